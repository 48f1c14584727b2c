// package emulator contains a userspace emulator for MSP430 jump sequences.
//
// It only models the status register flags the jump family depends on and the program counter, which is enough
// to follow the control flow of decoded code:
// * Debugging, step through a sequence of branches and see which ones are taken for a given set of flags.
// * Testing, check that assembled code reaches the expected instruction.
package emulator
