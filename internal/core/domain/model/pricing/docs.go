// Package pricing provides the delivery fee schedule and the discount policy
// of the storefront.
//
// The package includes:
//   - Schedule: The fee tier table mapping customer-stated distances to
//     delivery fees, with a free-zone city and a hard refusal beyond the last
//     tier
//   - Tier: A single (max distance, fee) price band
//   - DiscountPolicy: The explicit configuration for global, promo-code, and
//     optional loyalty discounts
//
// Key business rules:
//   - The free-zone city is delivered free of charge regardless of distance
//   - Fees are a non-decreasing step function of distance within the covered
//     range; beyond it the zone is simply not served
//   - The schedule is replaced as a whole, never patched, so readers always
//     see a consistent tier list
//   - Discounts are additive and read once per checkout commit
package pricing
