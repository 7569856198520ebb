// Package logiccircuit compiles a 3-D voxel model into a discrete-time
// logic circuit and simulates it synchronously.
//
// The pipeline, leaves first:
//
//	vec3/         — integer 3-vectors and axis-aligned boxes
//	voxelgrid/    — dense 3-D matrix, row-major x-fastest
//	label/        — 6-connected component labeling
//	morph/        — per-component bounding box, volume, shape signature
//	connectivity/ — adjacency graph between labeled components
//	schema/       — classification, model dedup, Schema build/verify/codec
//	circuit/      — wires, components, and the Tock/Tick scheduler
//	importer/     — voxel container import (reference format)
//	cmd/circuitsim — CLI: load, verify, run
//
// Each stage owns its output; upstream structures may be released once
// consumed. The runtime circuit owns its wires and components
// exclusively; models are shared by index.
package logiccircuit
