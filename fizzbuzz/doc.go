// Package fizzbuzz produces the classic FizzBuzz word sequence.
//
// Multiples of 3 become "Fizz", multiples of 5 become "Buzz", multiples of
// both become "FizzBuzz"; every other number is rendered in decimal.
package fizzbuzz
