package domain

type TaskType string

const (
	TaskResman      TaskType = "resman"
	TaskSysmonLight TaskType = "sysmon-light"
	TaskSysmonScale TaskType = "sysmon-scale"
	TaskCommOwn     TaskType = "comm-own"
	TaskCommOther   TaskType = "comm-other"
)

// TaskTypes is the full task vocabulary, in the order the allocator fills its
// bag: resource management, communications, then system monitoring.
var TaskTypes = []TaskType{
	TaskResman,
	TaskCommOwn,
	TaskCommOther,
	TaskSysmonLight,
	TaskSysmonScale,
}

func (t TaskType) IsComm() bool {
	return t == TaskCommOwn || t == TaskCommOther
}

// Channel returns the communication channel for comm task types and the empty
// channel for everything else.
func (t TaskType) Channel() Channel {
	switch t {
	case TaskCommOwn:
		return ChannelOwn
	case TaskCommOther:
		return ChannelOther
	default:
		return ""
	}
}
