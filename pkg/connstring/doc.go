// Package connstring builds database connection strings from structured
// parameters.
//
// Each supported engine has its own builder. Builders start empty, are
// filled through chained setters and rendered with String:
//
//	dsn := connstring.NewPostgresConnectionString().
//		SetUsernameAndPassword("user", "password").
//		SetHostWithPort("localhost", 5432).
//		SetDatabaseName("db_name").
//		SetConnectTimeout(30).
//		String()
//
// Values are rendered verbatim. Text containing the engine's delimiter
// characters is not escaped; callers that need quoting must apply it
// themselves (see QuoteSQLServerValue).
package connstring
