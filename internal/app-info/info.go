package info

// NAME the name of the application
const NAME = "keycombo"

// VERSION the current version of the application
const VERSION = "v0.1.0"
