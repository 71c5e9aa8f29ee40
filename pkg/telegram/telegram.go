// telegram 通知模块：邀请创建/兑换时给运营群发消息
package telegram

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Telegram struct {
	token  string
	chatId int64
}

func New(token string, chatId int64) *Telegram {
	return &Telegram{
		token:  token,
		chatId: chatId,
	}
}

// SendText 从环境变量读取配置并发送一条消息，配置缺失时静默跳过（只打日志）
func SendText(txtMsg string) error {
	token := os.Getenv("TELEGRAM_APITOKEN")
	chatIdStr := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatIdStr == "" { // skip
		log.Printf("telegram notify token or chatId is empty")
		return errors.New("token or chatId is empty")
	}

	i, err := strconv.Atoi(chatIdStr)
	if err != nil {
		log.Printf("telegram notify parse chatId err: %v", err)
		return err
	}

	tg := New(token, int64(i))
	if err := tg.SendText(txtMsg); err != nil {
		log.Printf("telegram notify err: %v", err)
		return err
	}
	return nil
}

// NotifyInviteCreated 邀请创建通知
func NotifyInviteCreated(brandName, code string) error {
	return SendText(fmt.Sprintf("📨 novo convite: %s (code=%s)", brandName, code))
}

// NotifyInviteRedeemed 邀请兑换成功通知
func NotifyInviteRedeemed(brandName, code string, brandID int) error {
	return SendText(fmt.Sprintf("✅ convite usado: %s (code=%s brand_id=%d)", brandName, code, brandID))
}

func (t *Telegram) SendText(txtMsg string) error {
	bot, err := tgbotapi.NewBotAPI(t.token)
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(t.chatId, txtMsg)
	if _, err := bot.Send(msg); err != nil {
		return err
	}
	return nil
}
