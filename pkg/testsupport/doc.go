// Package testsupport holds assertions shared by the markup tests.
package testsupport
