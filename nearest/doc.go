// Package nearest partitions the cells of a bounding box by their uniquely
// nearest input point under the Manhattan metric.
//
// What:
//
//   - Owner picks the strictly nearest point for a cell. A cell whose minimum
//     distance is shared by two or more points belongs to no region at all.
//   - Partition groups every cell of the points' bounding box by owner and
//     flags regions that reach the box edge.
//   - LargestFiniteRegion reports the biggest region.
//   - CountCellsUnderThreshold counts cells whose summed distance to every
//     point is below a threshold.
//
// Only the bounding box is examined. A region touching the box edge extends
// forever in the real plane; by default it is still a candidate for
// LargestFiniteRegion (inputs are expected not to make such a region the
// answer). Set Options.ExcludeUnbounded to drop those regions instead.
//
// Complexity:
//
//   - Partition / LargestFiniteRegion: O(W×H×n), Memory: O(n).
//   - CountCellsUnderThreshold:        O(W×H×n), Memory: O(1).
//
// Errors:
//
//   - geom.ErrNoPoints: the point list is empty.
package nearest
