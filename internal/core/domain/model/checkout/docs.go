// Package checkout models the step-by-step checkout conversation as a
// session with a sealed state union. Each state carries exactly the
// answers collected so far: address, then city, then distance, then the
// promo question, ending in Ready. Pricing and persistence happen outside
// this package once a session reaches Ready.
package checkout
