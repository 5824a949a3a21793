package bchain

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	zmq "github.com/pebbe/zmq4"

	"github.com/verusrpc/vrscrpc/common"
)

// MQ is the daemon ZeroMQ listener handle
type MQ struct {
	context   *zmq.Context
	socket    *zmq.Socket
	isRunning atomic.Bool
	finished  chan error
	binding   string
	metrics   *common.Metrics
}

// NotificationType is type of notification
type NotificationType int

const (
	// NotificationUnknown is unknown
	NotificationUnknown NotificationType = iota
	// NotificationNewBlock message is sent when the daemon connects a new block
	NotificationNewBlock
	// NotificationNewTx message is sent when there is a new mempool transaction
	NotificationNewTx
)

func (nt NotificationType) String() string {
	switch nt {
	case NotificationNewBlock:
		return "hashblock"
	case NotificationNewTx:
		return "hashtx"
	}
	return "unknown"
}

// Notification is a single message published by the daemon
type Notification struct {
	Type     NotificationType
	Hash     Hash
	Sequence uint32
}

// NewMQ connects to the daemon ZeroMQ publisher (zmqpubhashblock / zmqpubhashtx setting)
// and calls callback for every hashblock and hashtx message
func NewMQ(binding string, callback func(Notification), metrics *common.Metrics) (*MQ, error) {
	context, err := zmq.NewContext()
	if err != nil {
		return nil, err
	}
	socket, err := context.NewSocket(zmq.SUB)
	if err != nil {
		context.Term()
		return nil, err
	}
	closeOnError := func(err error) (*MQ, error) {
		socket.Close()
		context.Term()
		return nil, err
	}
	// queued subscriptions to an unreachable daemon must not block context.Term
	if err = socket.SetLinger(0); err != nil {
		return closeOnError(err)
	}
	if err = socket.SetSubscribe("hashblock"); err != nil {
		return closeOnError(err)
	}
	if err = socket.SetSubscribe("hashtx"); err != nil {
		return closeOnError(err)
	}
	if err = socket.Connect(binding); err != nil {
		return closeOnError(err)
	}
	glog.Info("MQ listening to ", binding)
	// the closing goroutine and the loop both send to finished, neither may block after Shutdown gave up
	mq := &MQ{
		context:  context,
		socket:   socket,
		finished: make(chan error, 2),
		binding:  binding,
		metrics:  metrics,
	}
	mq.isRunning.Store(true)
	go mq.run(callback)
	return mq, nil
}

// parseNotification decodes multipart message topic, body, sequence
func parseNotification(msg [][]byte) (Notification, bool) {
	var n Notification
	if len(msg) < 3 {
		return n, false
	}
	switch string(msg[0]) {
	case "hashblock":
		n.Type = NotificationNewBlock
	case "hashtx":
		n.Type = NotificationNewTx
	default:
		n.Type = NotificationUnknown
	}
	// body is the hash in the same byte order as shown by rpc
	if len(msg[1]) == 32 {
		if h, err := NewHashFromStr(hex.EncodeToString(msg[1])); err == nil {
			n.Hash = h
		}
	}
	if len(msg[len(msg)-1]) == 4 {
		n.Sequence = binary.LittleEndian.Uint32(msg[len(msg)-1])
	}
	return n, true
}

func (mq *MQ) run(callback func(Notification)) {
	defer func() {
		if r := recover(); r != nil {
			glog.Error("MQ loop recovered from ", r)
		}
		mq.isRunning.Store(false)
		glog.Info("MQ loop terminated")
		mq.finished <- nil
	}()
	repeatedError := false
	for {
		msg, err := mq.socket.RecvMessageBytes(0)
		if err != nil {
			if zmq.AsErrno(err) == zmq.Errno(zmq.ETERM) || err.Error() == "Socket is closed" {
				break
			}
			// interrupted system calls are expected once, log only repeated errors
			if repeatedError {
				glog.Error("MQ RecvMessageBytes error ", err, ", ", zmq.AsErrno(err))
			}
			repeatedError = true
			time.Sleep(100 * time.Millisecond)
			continue
		}
		repeatedError = false
		n, ok := parseNotification(msg)
		if !ok {
			continue
		}
		if n.Type == NotificationUnknown {
			glog.Infof("MQ: NotificationUnknown %v", string(msg[0]))
		}
		if glog.V(2) {
			glog.Infof("MQ: %v %v-%d", n.Type, n.Hash, n.Sequence)
		}
		if mq.metrics != nil {
			mq.metrics.MQNotifications.With(common.Labels{"type": n.Type.String()}).Inc()
		}
		callback(n)
	}
}

// Shutdown stops listening to the ZeroMQ and closes the connection
func (mq *MQ) Shutdown(ctx context.Context) error {
	glog.Info("MQ shutdown")
	if mq.isRunning.Load() {
		go func() {
			// if errors in the closing sequence, let it close ungracefully
			if err := mq.socket.SetUnsubscribe("hashtx"); err != nil {
				mq.finished <- err
				return
			}
			if err := mq.socket.SetUnsubscribe("hashblock"); err != nil {
				mq.finished <- err
				return
			}
			if err := mq.socket.Disconnect(mq.binding); err != nil {
				mq.finished <- err
				return
			}
			if err := mq.socket.Close(); err != nil {
				mq.finished <- err
				return
			}
			if err := mq.context.Term(); err != nil {
				mq.finished <- err
				return
			}
		}()
		var err error
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case err = <-mq.finished:
		}
		if err != nil {
			return err
		}
	}
	glog.Info("MQ shutdown finished")
	return nil
}
