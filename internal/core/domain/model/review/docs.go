// Package review holds customer service reviews: a star rating with an
// optional comment, append-only.
package review
