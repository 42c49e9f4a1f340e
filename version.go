package main

// _version is overwritten at release time with -ldflags.
var _version = "v0.1.0-dev"
