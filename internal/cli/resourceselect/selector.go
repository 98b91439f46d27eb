package resourceselect

import (
	"fmt"
	"slices"

	"github.com/manifoldco/promptui"
)

// Resolve determines which collection to use based on the following priority:
// 1. If name is provided, it must be one of names
// 2. If only one collection exists, use that
// 3. Otherwise, prompt user to select one interactively
func Resolve(names []string, name string, interactive bool) (string, error) {
	if name != "" {
		if !slices.Contains(names, name) {
			return "", fmt.Errorf("unknown resource '%s' (available: %v)", name, names)
		}
		return name, nil
	}

	if len(names) == 1 {
		return names[0], nil
	}

	if !interactive {
		return "", fmt.Errorf("resource is required in non-interactive mode (available: %v)", names)
	}
	return Prompt(names)
}

// Prompt shows an interactive prompt for the user to select a collection
func Prompt(names []string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("no resources available")
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "> {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "{{ . | green }}",
	}

	prompt := promptui.Select{
		Label:     "Select a resource",
		Items:     names,
		Templates: templates,
		Size:      10,
	}

	index, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("resource selection cancelled: %w", err)
	}

	return names[index], nil
}

// Confirm asks a yes/no question; anything but "y" declines.
func Confirm(label string) bool {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	return err == nil
}
