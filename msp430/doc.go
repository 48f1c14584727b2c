// Package msp430 contains the types and constants to decode, encode, and render the MSP430 relative jump
// instructions in go.
package msp430
