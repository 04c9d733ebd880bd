package quicksort

// Test-only handles on the unexported partition kernels.
var (
	PartitionTwoPointerInts = partitionTwoPointer[int]
	PartitionThreeWayInts   = partitionThreeWay[int]
	DeriveSeed              = deriveSeed
)
