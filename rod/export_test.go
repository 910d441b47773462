package rod

// TargetURL exposes targetURL for tests.
var TargetURL = targetURL
