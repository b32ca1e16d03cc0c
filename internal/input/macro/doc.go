// Package macro records key events into named registers for replay.
//
// In normal mode "q{register}" starts recording, a lone "q" stops it, and
// "@{register}" replays the register; "@@" replays the register played
// last. Registers are the letters a-z and digits 0-9. Recording into an
// upper-case letter appends to the lower-case register.
//
// The Recorder only stores events. The input session interprets the marker
// commands this package binds and feeds recorded events back through itself.
package macro
