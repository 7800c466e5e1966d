package event

const SyncTopic = "sync_data_to_search"

// SyncEvent 业务方发出来的同步事件，Data 就是写入索引的文档
type SyncEvent struct {
	Biz   string `json:"biz"`
	BizID int64  `json:"bizID"`
	Data  string `json:"data"`
}
