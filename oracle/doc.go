// Package oracle computes receiver posteriors and actions under Bayes' rule.
//
// Given a prior belief in State1 and a signaling policy, the oracle answers two
// questions for a single message:
//
//   - Posterior: P(State1 | message) = prior*q1 / (prior*q1 + (1-prior)*q0)
//   - Action: 1 when the posterior is at least 0.5, 0 otherwise
//
// A message that is off-path in both states (q0 = q1 = 0) carries no
// information and leaves the prior unchanged.
package oracle
