// Package calibration recovers calibration values from lines of text and
// sums them.
//
// 🚀 What is a calibration value?
//
//	Each line hides a two-digit number: the first digit found on the line
//	followed by the last one. A line with a single digit doubles it
//	("a7b" → 77); a line with no digit contributes 0.
//
// ✨ Modes:
//   - Digits — every decimal digit character on the line counts.
//   - Words  — the line is split on whitespace; a field containing digits
//     contributes the number those digits spell, and a field that is
//     exactly a number word ("one" … "nine") contributes that digit.
//
// ⚙️ Usage:
//
//	f, _ := os.Open("input.txt")
//	defer f.Close()
//	sum, err := calibration.Sum(f, calibration.Words)
//
// Performance:
//
//   - Time:   O(total input length)
//   - Memory: O(longest line)
package calibration
