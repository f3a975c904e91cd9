// Package generator produces random passwords for new credentials.
//
// Every password mixes upper-case letters, lower-case letters, digits and
// symbols, with at least one of each. Characters and their final order are
// both drawn from crypto/rand.
package generator
