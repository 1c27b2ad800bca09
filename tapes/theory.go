package tapes

const Theory = `
# Tape Machine Theory

## 1. State
- **Program**: an immutable sequence of instructions produced by the lexer. Loop
  instructions carry the index of their partner, resolved once before execution.
- **PC**: index of the next instruction. Starts at 0.
- **Tape**: 30000 byte cells, all zero at start. The only addressable memory.
- **Pointer**: index of the current cell. Starts at 0.

## 2. Fetch-Execute Cycle
1. **Fetch**: if PC is past the last instruction, the run is complete.
2. **Execute**:
   - '>' '<' move the pointer. Leaving the tape is a runtime error, never a wrap.
   - '+' '-' add or subtract one, modulo 256.
   - '.' writes the current cell as one raw byte and flushes.
   - ',' consumes exactly one input byte into the current cell. End of input is a runtime error.
   - '[' jumps to its partner when the cell is zero.
   - ']' jumps to its partner when the cell is not zero.
3. **Advance**: PC moves one past the executed (or jumped-to) instruction.

## 3. Termination
Running off the end of the program is the only normal exit. A loop whose cell
never reaches zero does not terminate.
`
