package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// GenerateID generates a unique ID with the given prefix
func GenerateID(prefix string) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 10

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		result[i] = charset[num.Int64()]
	}

	return fmt.Sprintf("%s-%s", prefix, string(result))
}

// ValidateUserID validates the user ID format
func ValidateUserID(userID string) bool {
	return strings.HasPrefix(userID, "usr-")
}

// ValidateTransactionID validates the transaction ID format
func ValidateTransactionID(transactionID string) bool {
	return strings.HasPrefix(transactionID, "txn-")
}

// ValidateBudgetID validates the budget ID format
func ValidateBudgetID(budgetID string) bool {
	return strings.HasPrefix(budgetID, "bgt-")
}
