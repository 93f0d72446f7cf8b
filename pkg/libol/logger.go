package libol

import (
	"container/list"
	"fmt"
	"log"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	PRINT = 01
	LOG   = 05
	STACK = 06
	DEBUG = 10
	CMD   = 15
	EVENT = 16
	INFO  = 20
	WARN  = 30
	ERROR = 40
	FATAL = 99
)

// MaxMessages bounds the in-memory history kept for /api/log.
const MaxMessages = 1024

type Message struct {
	Level   string `json:"level"`
	Date    string `json:"date"`
	Message string `json:"message"`
	Module  string `json:"module"`
}

var levels = map[int]string{
	PRINT: "PRINT",
	LOG:   "LOG",
	DEBUG: "DEBUG",
	STACK: "STACK",
	CMD:   "CMD",
	EVENT: "EVENT",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func LevelName(level int) string {
	if str, ok := levels[level]; ok {
		return str
	}
	return "NULL"
}

// ParseLevel accepts either a level name or its number.
func ParseLevel(value string) int {
	for level, name := range levels {
		if strings.EqualFold(name, value) {
			return level
		}
	}
	level := 0
	if _, err := fmt.Sscanf(value, "%d", &level); err == nil && level > 0 {
		return level
	}
	return INFO
}

type logger struct {
	Level    int
	FileName string
	FileLog  *log.Logger
	Lock     sync.Mutex
	Messages *list.List
}

func (l *logger) Write(level int, module, format string, v ...interface{}) {
	str := LevelName(level)
	if level >= l.Level {
		log.Printf(fmt.Sprintf("%s|%s|%s", str, module, format), v...)
	}
	if level >= INFO {
		l.Save(str, module, format, v...)
	}
}

func (l *logger) Save(level, module, format string, v ...interface{}) {
	m := fmt.Sprintf(format, v...)
	if l.FileLog != nil {
		l.FileLog.Printf("%s|%s|%s\n", level, module, m)
	}
	l.Lock.Lock()
	defer l.Lock.Unlock()
	if l.Messages.Len() >= MaxMessages {
		if e := l.Messages.Front(); e != nil {
			l.Messages.Remove(e)
		}
	}
	l.Messages.PushBack(&Message{
		Level:   level,
		Date:    time.Now().Format(time.RFC3339),
		Message: m,
		Module:  module,
	})
}

// List walks the saved messages from newest to oldest, the channel is
// finished by nil.
func (l *logger) List() <-chan *Message {
	c := make(chan *Message, 128)
	go func() {
		l.Lock.Lock()
		defer l.Lock.Unlock()
		for ele := l.Messages.Back(); ele != nil; ele = ele.Prev() {
			c <- ele.Value.(*Message)
		}
		c <- nil
	}()
	return c
}

var Logger = &logger{
	Level:    INFO,
	Messages: list.New(),
}

func SetLogger(file string, level int) {
	Logger.Level = level
	if file == "" || Logger.FileName == file {
		return
	}
	Logger.FileName = file
	fp, err := OpenWrite(file)
	if err == nil {
		Logger.FileLog = log.New(fp, "", log.LstdFlags)
	} else {
		Warn("Logger.SetLogger: %s", err)
	}
}

func SetLevel(level int) {
	Logger.Level = level
}

type SubLogger struct {
	*logger
	Prefix string
}

func NewSubLogger(prefix string) *SubLogger {
	return &SubLogger{
		logger: Logger,
		Prefix: prefix,
	}
}

var rLogger = NewSubLogger("root")

func HasLog(level int) bool {
	return rLogger.Has(level)
}

func Catch(name string) {
	if err := recover(); err != nil {
		Fatal("%s|PANIC >>> %s <<<", name, err)
		Fatal("%s|STACK >>> %s <<<", name, debug.Stack())
	}
}

func Print(format string, v ...interface{}) {
	rLogger.Print(format, v...)
}

func Debug(format string, v ...interface{}) {
	rLogger.Debug(format, v...)
}

func Cmd(format string, v ...interface{}) {
	rLogger.Cmd(format, v...)
}

func Info(format string, v ...interface{}) {
	rLogger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	rLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	rLogger.Error(format, v...)
}

func Fatal(format string, v ...interface{}) {
	rLogger.Fatal(format, v...)
}

func (s *SubLogger) Has(level int) bool {
	return level >= s.Level
}

func (s *SubLogger) Print(format string, v ...interface{}) {
	s.logger.Write(PRINT, s.Prefix, format, v...)
}

func (s *SubLogger) Stack(format string, v ...interface{}) {
	s.logger.Write(STACK, s.Prefix, format, v...)
}

func (s *SubLogger) Debug(format string, v ...interface{}) {
	s.logger.Write(DEBUG, s.Prefix, format, v...)
}

func (s *SubLogger) Cmd(format string, v ...interface{}) {
	s.logger.Write(CMD, s.Prefix, format, v...)
}

func (s *SubLogger) Event(format string, v ...interface{}) {
	s.logger.Write(EVENT, s.Prefix, format, v...)
}

func (s *SubLogger) Info(format string, v ...interface{}) {
	s.logger.Write(INFO, s.Prefix, format, v...)
}

func (s *SubLogger) Warn(format string, v ...interface{}) {
	s.logger.Write(WARN, s.Prefix, format, v...)
}

func (s *SubLogger) Error(format string, v ...interface{}) {
	s.logger.Write(ERROR, s.Prefix, format, v...)
}

func (s *SubLogger) Fatal(format string, v ...interface{}) {
	s.logger.Write(FATAL, s.Prefix, format, v...)
}

func init() {
	log.SetFlags(log.LstdFlags)
}
