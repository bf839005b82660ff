// Package user models marketplace participants and their closed set of roles.
package user
