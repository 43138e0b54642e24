package nw

// Traceback exposes the traceback walk so corrupted trace grids can be tested.
var Traceback = traceback
