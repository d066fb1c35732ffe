package outbound

// TaskDispatcher bounds how many pipeline invocations run at once. The
// worker pool in cmd/main.go implements it.
type TaskDispatcher interface {
	Submit(task func()) error
}
