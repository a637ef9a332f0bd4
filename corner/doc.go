// Package corner computes per-pixel cornerness responses (Harris and
// Shi-Tomasi) over a grayscale *grid.Grid[float64].
//
// What is a cornerness response?
//
//	For every pixel the local structure tensor
//
//	    M = Σ_window [[Ix², IxIy], [IxIy, Iy²]]
//
//	summarizes how intensity changes around it. Both eigenvalues large means
//	a corner; one large means an edge; none means a flat patch.
//	  • Harris:     R = det(M) − κ·trace(M)²          (κ default 0.06)
//	  • Shi-Tomasi: R = λmin(M)
//
// Pipeline:
//  1. Sobel derivatives Ix, Iy (no pre-smoothing, isolated zero border).
//  2. Products Ixx, Iyy, Ixy aggregated over a patchSize×patchSize window
//     (box sum by default, Gaussian weights with WithWeighting(Gaussian)).
//  3. Per-pixel score, negatives clamped to 0.
//  4. Border band of width SobelRadius + patchSize/2 zeroed on all sides:
//     those pixels never saw a fully supported window ("valid" semantics).
//
// The output always has the input's shape.
//
// Usage:
//
//	rep := diag.NewReport(logger)
//	resp, err := corner.HarrisResponse(img, 9, corner.DefaultKappa, corner.WithDiagnostics(rep))
//
// Complexity: O(W·H·patchSize) time, O(W·H) memory.
package corner
