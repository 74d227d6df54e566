package main

// version is reported by "rolodex --version".
const version = "0.1.0"
