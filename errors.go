// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collection

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is the root cause of every panic raised by this package
// when an operation receives an argument it cannot work with: a nil callback
// or generator, a nil container passed to Concat, or a negative count passed
// to FirstN or LastN. The recovered value is an error and can be matched
// with errors.Is. The panic is raised before any entry is touched, so the
// container is left unmodified.
var ErrInvalidArgument = errors.New("collection: invalid argument")

func errNilCallback(op string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: callback must not be nil", op)
}

func errNilContainer(op string, pos int) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: container argument %d is nil", op, pos)
}

func errNegativeCount(op string, n int) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: count must not be negative, got %d", op, n)
}
