package event

const NotificationTopic = "notification_events"

// NotificationEvent 站内信事件，由 notification 模块消费落库
type NotificationEvent struct {
	Uid int64 `json:"uid"`
	// Biz + BizID 指向触发通知的业务对象
	Biz     string `json:"biz"`
	BizID   int64  `json:"bizID"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
