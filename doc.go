// Package scicalc implements the expression engine of a scientific
// calculator.
//
// A raw expression as typed on the keypad is tokenized, reordered into
// postfix form by the shunting-yard algorithm, and evaluated on an operand
// stack. Exponentiation is right-associative, unary functions bind tightest,
// and the display glyphs ×, ÷, −, and π are accepted alongside their ASCII
// spellings. Failures are one of four terminal kinds: syntax, domain,
// divide-by-zero, and overflow.
//
// The engine is stateless: angle mode and display settings are passed per
// evaluation, and memory, history, and the previous answer belong to the
// caller.
package scicalc
