package simpson

// White-box bridge for simpson_test: stencil weights and kernels.
var (
	ExportedWeights1 = weights1
	ExportedWeights2 = weights2
	ExportedWeights3 = weights3
	ExportedStencil1 = stencil1
	ExportedStencil2 = stencil2
	ExportedStencil3 = stencil3
)
