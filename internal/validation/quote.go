package validation

import (
	"fmt"
	"strings"
)

// ValidateQuoteText проверяет текст цитаты, вводимый пользователем.
// Текст не может быть пустым или состоять только из пробелов.
func ValidateQuoteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}
	return nil
}

// ValidateCategory проверяет категорию цитаты, вводимую пользователем.
func ValidateCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("category cannot be empty")
	}
	return nil
}

// ValidateQuote проверяет оба обязательных поля и возвращает первую ошибку.
func ValidateQuote(text, category string) error {
	if err := ValidateQuoteText(text); err != nil {
		return err
	}
	return ValidateCategory(category)
}
