package handlers

// Request types sent by the voice platform
const (
	RequestLaunch       = "LaunchRequest"
	RequestIntent       = "IntentRequest"
	RequestSessionEnded = "SessionEndedRequest"
)

// Intent names, already resolved by the voice platform
const (
	IntentCancel         = "AMAZON.CancelIntent"
	IntentHelp           = "AMAZON.HelpIntent"
	IntentStop           = "AMAZON.StopIntent"
	IntentNavigateHome   = "AMAZON.NavigateHomeIntent"
	IntentFallback       = "AMAZON.FallbackIntent"
	IntentStartGame      = "StartGame"
	IntentAddPlayer      = "AddPlayer"
	IntentPlayGame       = "PlayGame"
	IntentStartQuestions = "StartQuestions"
)

// SlotName carries the spoken player name for IntentAddPlayer
const SlotName = "name"

// Spoken messages
const (
	MsgWelcome          = "Welcome to Spyfall! Say start game to begin."
	MsgWelcomeReprompt  = "You can ask for help if you need instructions on how to play."
	MsgHelp             = "Say start game, then add each player by saying add followed by their name. When everyone has joined, say let's play the game."
	MsgCancel           = "Canceling..."
	MsgStop             = "Bye bye!"
	MsgFallback         = "Sorry, I didn't get that. You can ask for help."
	MsgStartGame        = "Let's play the game! Join everyone into the game and say let's play the game!"
	MsgAlreadyStarted   = "This game is already set up. Keep adding players, or say let's play the game."
	MsgAddAnother       = "Who else is playing? Or say let's play the game."
	MsgRoundReprompt    = "Say let's play the game to deal a new round."
	MsgQuestionsPending = "Questions are not available yet. Say let's play the game to deal a new round."
	MsgQuestionsStarted = "Questions have started."
	MsgError            = "I'm sorry, there was an unexpected error. Please, try again later."
	MsgNoSession        = "There is no game yet. Say start game first."
	MsgDuplicatePlayer  = "That name is already taken. Please join with a different name."
	MsgInvalidName      = "I didn't catch a name. Please say add followed by the player's name."
	MsgTableFull        = "The table is full. No more players can join this game."
	MsgNoPlayers        = "Nobody has joined yet. Add some players first."
	MsgBusy             = "Lots of people are talking at once. Please try that again."
)
