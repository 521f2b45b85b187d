package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			// debug is off by default, everything else on
			return fieldName != "debug"
		case reflect.Int:
			if fieldName == "max_log_files" {
				return 1000
			}
			return 10
		}
	}

	switch t.Kind() {
	case reflect.Map:
		if t.Name() == "KeyBindingsConfig" {
			return map[string]any{
				"advance": []string{"space", "n"},
				"help":    "?",
			}
		}
		if fieldName == "default_workouts" {
			return map[string]string{
				"spades":   "Push-ups",
				"hearts":   "Squats",
				"diamonds": "Sit-ups",
				"clubs":    "Burpees",
			}
		}
	case reflect.String:
		return "example"
	}

	return nil
}
