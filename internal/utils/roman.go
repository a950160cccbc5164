package utils

import "strings"

var (
	romanValues  = []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	romanSymbols = []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}
)

// ToRoman renders a positive number in roman numerals; zero and negatives
// give "".
func ToRoman(num int) string {
	var b strings.Builder
	for i, v := range romanValues {
		for num >= v {
			b.WriteString(romanSymbols[i])
			num -= v
		}
	}
	return b.String()
}
