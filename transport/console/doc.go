// Package console provides the line-oriented terminal transport for the kart
// simulator.
//
// The console package implements:
//   - Reading one line of player input at a time
//   - Writing lines of game text
//   - Inline prompts that leave the cursor on the same line
//   - Closing the input stream once the session ends
//
// Usage:
//
//	term := console.New(os.Stdin, os.Stdout)
//	defer term.Close()
//
//	term.WriteLine("Choose your driver (mario / luigi / peach):")
//	term.Prompt("> ")
//	choice, err := term.ReadLine()
//
// End of Input:
//
// ReadLine returns io.EOF once the input is exhausted, and keeps returning it
// on later calls. A final line without a trailing newline is still returned
// before io.EOF. Windows line endings are stripped.
package console
