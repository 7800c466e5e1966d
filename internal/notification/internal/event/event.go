package event

const NotificationTopic = "notification_events"

// NotificationEvent 业务方发出来的站内信事件
type NotificationEvent struct {
	Uid int64 `json:"uid"`
	// Biz + BizID 指向触发通知的业务对象
	Biz     string `json:"biz"`
	BizID   int64  `json:"bizID"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
