package reconcile

// Merge exposes the unvalidated two-cursor walk to reconcile_test so the
// postcondition check can be driven directly.
var Merge = merge
