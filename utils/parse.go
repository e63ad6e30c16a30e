package utils

import (
    "strconv"
    "strings"
)

// ParsePrice reads a fare amount from free-text CSV data. Currency markers
// and whitespace are trimmed; anything unparsable is a zero fare.
func ParsePrice(price string) float64 {
    price = strings.TrimSpace(strings.ToUpper(price))
    for _, marker := range []string{"EUR", "USD", "GBP", "€", "$", "£"} {
        price = strings.TrimPrefix(price, marker)
        price = strings.TrimSuffix(price, marker)
    }
    price = strings.ReplaceAll(strings.TrimSpace(price), ",", ".")

    val, err := strconv.ParseFloat(price, 64)
    if err != nil || val < 0 {
        return 0
    }
    return val
}
