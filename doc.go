// Package checkpoint is a small collection of self-contained programming
// exercises ("checkpoints"), each solved as a pure, tested Go package.
//
// 🚀 What's inside?
//
//	• isqrt    — integer square root of 1..10 000 without math.Sqrt,
//	             with distinct out-of-bounds / no-root errors
//	• fizzbuzz — the FizzBuzz word sequence
//	• uniq     — total vs. distinct item counts
//	• lucky    — odd numbers, sorted, labelled as lucky
//	• pick     — random element of an optional list, 1..100 fallback
//	• gearbox  — a car with a gear selector and numbered gears 1..10
//	• calibration — first/last digit sums over lines, optionally with number words
//	• reverse  — string reversal by grapheme cluster
//
// The checkpoint command (cmd/checkpoint) prints the results of each
// exercise; settings can be overridden with a YAML file.
//
//	go install github.com/katalvlaran/checkpoint/cmd/checkpoint@latest
//	checkpoint sqrt 81 2 10001
package checkpoint
