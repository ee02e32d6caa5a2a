package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage sends a plain text message to the destination chat.
func (tg *TelegramImpl) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(tg.ChatID, text)

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message", "chatID", tg.ChatID, "error", err)
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendPhoto uploads the file at path as a photo. An empty caption sends the
// photo bare.
func (tg *TelegramImpl) SendPhoto(path string, caption string) error {
	photo := tgbotapi.NewPhoto(tg.ChatID, tgbotapi.FilePath(path))
	photo.Caption = caption

	if _, err := tg.TgBot.Send(photo); err != nil {
		tg.Logger.Error("Error sending photo", "chatID", tg.ChatID, "path", path, "error", err)
		return fmt.Errorf("failed to send photo: %w", err)
	}
	return nil
}

// SendVideo uploads the file at path as a video.
func (tg *TelegramImpl) SendVideo(path string, caption string) error {
	video := tgbotapi.NewVideo(tg.ChatID, tgbotapi.FilePath(path))
	video.Caption = caption

	if _, err := tg.TgBot.Send(video); err != nil {
		tg.Logger.Error("Error sending video", "chatID", tg.ChatID, "path", path, "error", err)
		return fmt.Errorf("failed to send video: %w", err)
	}
	return nil
}
