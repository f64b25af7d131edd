/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package functional holds the small generic Option pattern used by
// constructors that take optional settings, mirroring the
// functional.Option[T]/ResolveOptions helper referenced by the
// teacher's pkg/utils/pretty package.
package functional

// Option mutates a T and returns the mutated value, letting a
// constructor accept a variadic list of optional settings.
type Option[T any] func(T) T

// ResolveOptions applies every option in order over a zero-value T.
func ResolveOptions[T any](opts ...Option[T]) T {
	var t T
	for _, opt := range opts {
		t = opt(t)
	}
	return t
}
