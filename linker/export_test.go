package linker

// Prefer exposes prefer to the external test package.
var Prefer = prefer
