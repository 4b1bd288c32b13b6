// Package plan builds the parameterized SQL a subquery executes against the
// course catalog. Generation is fully deterministic: filters come only from
// extracted entities, values travel as placeholder arguments, and no user
// text is ever interpolated into a statement.
package plan
