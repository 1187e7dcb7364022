// Package ui renders the log list in the terminal with Bubble Tea.
//
// The model owns the accumulated entry store and the filter engine; every
// tick it drains the pipeline's hand-off queue and extends the filtered view
// incrementally. Keys: "/" filter, +/- detail level, f follow, y yank, c
// clear, j/k selection, q quit.
package ui
