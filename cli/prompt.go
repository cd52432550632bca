// Package cli holds the interactive prompts used by the command-line tools.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

var errEmptyInput = errors.New("you must enter something")

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// PromptString asks for a non-empty line of text.
func PromptString(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: ValidateNonEmpty,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	return prompt.Run()
}

// PromptFloat asks for a number.
func PromptFloat(label string) (float64, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: ValidateFloat,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return 0, err
	}

	return ParseFloat(txt)
}

// ValidateNonEmpty rejects blank input.
func ValidateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errEmptyInput
	}

	return nil
}

// ValidateFloat rejects input that ParseFloat cannot read.
func ValidateFloat(s string) error {
	_, err := ParseFloat(s)

	return err
}

// ParseFloat reads a decimal number, ignoring surrounding blanks.
func ParseFloat(s string) (float64, error) {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number: %w", err)
	}

	return val, nil
}
