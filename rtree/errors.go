package rtree

import "errors"

// Stop is a sentinel error a RangeSearch or PrioritySearch callback
// can return to end the traversal early without that being reported
// as a failure, grounded on
// _examples/missinglink-simplefeatures/rtree/rtree.go's identical
// convention.
var Stop = errors.New("rtree: stop")
