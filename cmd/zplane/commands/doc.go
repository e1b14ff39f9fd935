// Package commands defines the zplane CLI.
//
// Commands
//
//   - response  Print magnitude (dB) and unwrapped phase per frequency
//   - pzk       Print zeros, poles and gain
//   - graph     Print the response and optionally the pole-zero table
//   - design    Print the taps of a Kaiser-window lowpass FIR
//   - filter    Apply H(z) to every channel of a WAV file
//
// # Configuration
//
// Coefficients and analysis settings come from, in increasing priority, the
// built-in defaults, the file named by --config, ZPLANE_* environment
// variables and command-line flags.
package commands
