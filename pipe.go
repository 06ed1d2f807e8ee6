// Copyright 2026 The Rx Authors.
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

package rx

import "reflect"

// Pipe chains operators onto source at runtime, checking at each step that
// the operator accepts what the previous one produced. PipeN should be
// favored over Pipe: it checks the whole chain at compile time instead of
// panicking on a mismatch found only when Pipe runs.
func Pipe[First, Last any](source Observable[First], operators ...any) Observable[Last] {
	o := reflect.ValueOf(source)

	for _, operator := range operators {
		funcValue := reflect.ValueOf(operator)

		if funcValue.Type().Kind() != reflect.Func || funcValue.Type().NumIn() != 1 || funcValue.Type().NumOut() != 1 {
			panic(newPipeError("%s is not an operator", funcValue.Type()))
		}
		if funcValue.Type().In(0).Kind() != reflect.Interface {
			panic(newPipeError("%s does not implement Observable[T]", funcValue.Type().In(0)))
		}
		if funcValue.Type().Out(0).Kind() != reflect.Interface {
			panic(newPipeError("%s does not implement Observable[T]", funcValue.Type().Out(0)))
		}
		if !o.Type().Implements(funcValue.Type().In(0)) {
			panic(newPipeError("%s does not implement %s", o.Type(), funcValue.Type().In(0)))
		}

		o = funcValue.Call([]reflect.Value{o})[0]
	}

	want := reflect.TypeOf((*Observable[Last])(nil)).Elem()
	if !o.Type().Implements(want) {
		panic(newPipeError("%s does not implement %s", o.Type(), want))
	}

	v, _ := o.Interface().(Observable[Last])

	return v
}

// PipeOp is the operator version of Pipe: it returns a function that
// applies the chain, instead of applying it immediately.
func PipeOp[First, Last any](operators ...any) func(Observable[First]) Observable[Last] {
	return func(source Observable[First]) Observable[Last] {
		return Pipe[First, Last](source, operators...)
	}
}

// Pipe1 is a typesafe implementation of Pipe that takes a source and 1 operator.
func Pipe1[A, B any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
) Observable[B] {
	return operator1(source)
}

// Pipe2 is a typesafe implementation of Pipe that takes a source and 2 operators.
func Pipe2[A, B, C any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
) Observable[C] {
	return operator2(operator1(source))
}

// Pipe3 is a typesafe implementation of Pipe that takes a source and 3 operators.
func Pipe3[A, B, C, D any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
) Observable[D] {
	return operator3(operator2(operator1(source)))
}

// Pipe4 is a typesafe implementation of Pipe that takes a source and 4 operators.
func Pipe4[A, B, C, D, E any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
) Observable[E] {
	return operator4(operator3(operator2(operator1(source))))
}

// Pipe5 is a typesafe implementation of Pipe that takes a source and 5 operators.
func Pipe5[A, B, C, D, E, F any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
) Observable[F] {
	return operator5(operator4(operator3(operator2(operator1(source)))))
}

// Pipe6 is a typesafe implementation of Pipe that takes a source and 6 operators.
func Pipe6[A, B, C, D, E, F, G any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
) Observable[G] {
	return operator6(operator5(operator4(operator3(operator2(operator1(source))))))
}

// Pipe7 is a typesafe implementation of Pipe that takes a source and 7 operators.
func Pipe7[A, B, C, D, E, F, G, H any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
	operator7 func(Observable[G]) Observable[H],
) Observable[H] {
	return operator7(operator6(operator5(operator4(operator3(operator2(operator1(source)))))))
}

// Pipe8 is a typesafe implementation of Pipe that takes a source and 8 operators.
func Pipe8[A, B, C, D, E, F, G, H, I any](
	source Observable[A],
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
	operator7 func(Observable[G]) Observable[H],
	operator8 func(Observable[H]) Observable[I],
) Observable[I] {
	return operator8(operator7(operator6(operator5(operator4(operator3(operator2(operator1(source))))))))
}

// PipeOp1 is the operator version of Pipe1.
func PipeOp1[A, B any](
	operator1 func(Observable[A]) Observable[B],
) func(Observable[A]) Observable[B] {
	return func(source Observable[A]) Observable[B] {
		return Pipe1(source, operator1)
	}
}

// PipeOp2 is the operator version of Pipe2.
func PipeOp2[A, B, C any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
) func(Observable[A]) Observable[C] {
	return func(source Observable[A]) Observable[C] {
		return Pipe2(source, operator1, operator2)
	}
}

// PipeOp3 is the operator version of Pipe3.
func PipeOp3[A, B, C, D any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
) func(Observable[A]) Observable[D] {
	return func(source Observable[A]) Observable[D] {
		return Pipe3(source, operator1, operator2, operator3)
	}
}

// PipeOp4 is the operator version of Pipe4.
func PipeOp4[A, B, C, D, E any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
) func(Observable[A]) Observable[E] {
	return func(source Observable[A]) Observable[E] {
		return Pipe4(source, operator1, operator2, operator3, operator4)
	}
}

// PipeOp5 is the operator version of Pipe5.
func PipeOp5[A, B, C, D, E, F any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
) func(Observable[A]) Observable[F] {
	return func(source Observable[A]) Observable[F] {
		return Pipe5(source, operator1, operator2, operator3, operator4, operator5)
	}
}

// PipeOp6 is the operator version of Pipe6.
func PipeOp6[A, B, C, D, E, F, G any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
) func(Observable[A]) Observable[G] {
	return func(source Observable[A]) Observable[G] {
		return Pipe6(source, operator1, operator2, operator3, operator4, operator5, operator6)
	}
}

// PipeOp7 is the operator version of Pipe7.
func PipeOp7[A, B, C, D, E, F, G, H any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
	operator7 func(Observable[G]) Observable[H],
) func(Observable[A]) Observable[H] {
	return func(source Observable[A]) Observable[H] {
		return Pipe7(source, operator1, operator2, operator3, operator4, operator5, operator6, operator7)
	}
}

// PipeOp8 is the operator version of Pipe8.
func PipeOp8[A, B, C, D, E, F, G, H, I any](
	operator1 func(Observable[A]) Observable[B],
	operator2 func(Observable[B]) Observable[C],
	operator3 func(Observable[C]) Observable[D],
	operator4 func(Observable[D]) Observable[E],
	operator5 func(Observable[E]) Observable[F],
	operator6 func(Observable[F]) Observable[G],
	operator7 func(Observable[G]) Observable[H],
	operator8 func(Observable[H]) Observable[I],
) func(Observable[A]) Observable[I] {
	return func(source Observable[A]) Observable[I] {
		return Pipe8(source, operator1, operator2, operator3, operator4, operator5, operator6, operator7, operator8)
	}
}
