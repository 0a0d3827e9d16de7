/*
Package geom holds the small value types of the point index: points, axis-aligned
bounding boxes and the Morton (Z-order) key used to spatially cluster points
before bulk loading.

All types are plain values. Boxes form a monoid under Union with EmptyBox as the
neutral element, which lets tree code fold child boxes without special-casing
the first element.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package geom
