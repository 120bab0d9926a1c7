package format

// Alignment utilities for the pool layout. Cell sizes and size requests are
// quantized to Step-byte boundaries.

// AlignStep returns n aligned up to the next Step boundary.
//
// Example:
//
//	AlignStep(1) = 4
//	AlignStep(4) = 4
//	AlignStep(5) = 8
func AlignStep(n int) int {
	return (n + Step - 1) &^ (Step - 1)
}

// StepUnits returns the number of Step units covering n bytes.
//
// Example:
//
//	StepUnits(1)  = 1
//	StepUnits(4)  = 1
//	StepUnits(17) = 5
func StepUnits(n int) int {
	return (n + Step - 1) >> StepLog2
}

// Groups returns the number of WordBits-sized cell groups covering n cells.
func Groups(n int) int {
	return (n + WordBits - 1) / WordBits
}
