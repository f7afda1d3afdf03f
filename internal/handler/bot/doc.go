// Package bot routes Telegram updates to the roster and user log services.
//
// [Handler.HandleUpdate] is the single entry point shared by the long-poll
// worker and the webhook endpoint. Commands (/start, /help, /users) are
// dispatched by name; any other text is classified and answered with a
// record, a section listing or a guidance message.
package bot
