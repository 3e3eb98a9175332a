package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`
	Code     string `json:"code"` // код события, например leave_decision
	Msg      string `json:"msg"`
}
