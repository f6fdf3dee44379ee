// Package prompt collects page field values on the terminal. The survey
// backed driver sits behind the Driver interface so collection logic can be
// scripted in tests.
package prompt
