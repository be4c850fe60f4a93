package distmatrix

//-----------------------------------------------------------------------------
// Method names used to prefix errors with their origin.
//-----------------------------------------------------------------------------

const (
	// MethodWrite is the canonical name for Write.
	MethodWrite = "Write"
	// MethodWriteRange is the canonical name for WriteRange.
	MethodWriteRange = "WriteRange"
	// MethodGenerate is the canonical name for Generate.
	MethodGenerate = "Generate"
	// MethodAt is the canonical name for Matrix.At.
	MethodAt = "Matrix.At"
	// MethodValidate is the canonical name for Validate.
	MethodValidate = "Validate"
	// MethodWriteTo is the canonical name for Matrix.WriteTo.
	MethodWriteTo = "Matrix.WriteTo"
	// MethodTourCost is the canonical name for Matrix.TourCost.
	MethodTourCost = "Matrix.TourCost"
)

//-----------------------------------------------------------------------------
// Reference run and block format
//-----------------------------------------------------------------------------

const (
	// DefaultFirstSize is the smallest matrix of the reference run.
	DefaultFirstSize = 10
	// DefaultLastSize is the largest matrix of the reference run (inclusive).
	DefaultLastSize = 20

	// DefaultMaxWeight is the default weight modulus: off-diagonal cells land in [1,99].
	DefaultMaxWeight = 99
	// MaxGenerateSize is the largest order Generate will materialize
	// (MaxGenerateSize² cells). Write streams and has no such bound.
	MaxGenerateSize = 1 << 15

	// SizeWeightFactor scales the modulus to SizeWeightFactor*n under WithSizeScaledWeights.
	SizeWeightFactor = 10

	// HeaderPrefix precedes the matrix order on the first line of a block.
	HeaderPrefix = "data: "
	// FieldWidth is the minimum width of every printed cell (right-aligned).
	FieldWidth = 2
)
