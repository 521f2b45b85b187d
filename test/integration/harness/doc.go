// Package harness provides utilities for integration testing the deckofcards CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - DECKOFCARDS_HOME: Isolated per test (temp directory)
//   - DECKOFCARDS_DEBUG: Disabled to reduce noise
//   - DECKOFCARDS_HAPTICS: Disabled so no terminal bell is rung
package harness
