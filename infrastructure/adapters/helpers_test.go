package adapters

type testLogger struct{}

func (testLogger) Info(string)                                           {}
func (testLogger) InfoWithFields(string, map[string]interface{})         {}
func (testLogger) Error(error, string)                                   {}
func (testLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (testLogger) Debug(string)                                          {}
func (testLogger) DebugWithFields(string, map[string]interface{})        {}
func (testLogger) Warn(string)                                           {}
